package service

import (
	"github.com/go-playground/validator/v10"
)

// validate checks presence/format constraints on Create drafts before they
// reach a repository. Deeper validation belongs to the form boundary.
var validate = validator.New()
