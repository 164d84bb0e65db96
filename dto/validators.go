package dto

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskmaster/model"
)

var registerOnce sync.Once
var registerErr error

// RegisterValidators adds the task_status and time_log_type tags to gin's
// validator. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
			return model.TaskStatus(fl.Field().String()).Valid()
		}); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("time_log_type", func(fl validator.FieldLevel) bool {
			return model.TimeLogType(fl.Field().String()).Valid()
		})
	})
	return registerErr
}
