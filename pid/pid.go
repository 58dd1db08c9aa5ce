// Package pid implements a discrete proportional-integral-derivative controller.
package pid

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrNegativeGain is returned by New when a gain is below zero.
	ErrNegativeGain = errors.New("pid gains must be non-negative")
	// ErrNonPositiveStep is returned by Compute when dt <= 0.
	ErrNonPositiveStep = errors.New("pid time step must be positive")
)

// Gains holds the proportional, integral and derivative coefficients.
type Gains struct {
	Kp float64
	Ki float64
	Kd float64
}

// Controller keeps the integral and previous error between Compute calls.
type Controller struct {
	mu        sync.Mutex
	gains     Gains
	prevError float64
	integral  float64
}

// New returns a controller with zeroed state.
func New(kp, ki, kd float64) (*Controller, error) {
	if kp < 0 || ki < 0 || kd < 0 {
		return nil, errors.Wrapf(ErrNegativeGain, "kp=%g ki=%g kd=%g", kp, ki, kd)
	}
	return &Controller{gains: Gains{Kp: kp, Ki: ki, Kd: kd}}, nil
}

// Compute returns kp*e + ki*integral + kd*(e-prevError)/dt where e is
// setpoint-measured and the integral accumulates e*dt. State is left
// untouched when dt is not positive.
func (c *Controller) Compute(setpoint, measured, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, errors.Wrapf(ErrNonPositiveStep, "dt=%g", dt)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e := setpoint - measured
	c.integral += e * dt
	derivative := (e - c.prevError) / dt
	c.prevError = e

	return c.gains.Kp*e + c.gains.Ki*c.integral + c.gains.Kd*derivative, nil
}

// Reset clears the integral and previous error.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.integral = 0
	c.prevError = 0
}

func (c *Controller) Gains() Gains {
	return c.gains
}

// State returns the accumulated integral and the last error.
func (c *Controller) State() (integral, prevError float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.integral, c.prevError
}
