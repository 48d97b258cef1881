package leastsquares

import (
	"errors"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/solver"
)

var (
	ErrEmptyInput       = dataset.ErrEmptyInput
	ErrInsufficientData = dataset.ErrInsufficientData
	ErrSingularSystem   = solver.ErrSingularSystem

	ErrNoOptions      = errors.New("no initialized engine options")
	ErrNoResult       = errors.New("no fit result, run a fit first")
	ErrPredictorCount = errors.New("number of predictors does not match the model")
)
