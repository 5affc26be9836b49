// Package mover contains the Mover aggregate: a moving company profile with
// its vehicle, rate card, approval and availability flags, and the running
// rating and completed-job statistics maintained by the booking lifecycle.
package mover
