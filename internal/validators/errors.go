// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("id is required")
	ErrEmptyFilename    = errors.New("filename is required")
	ErrEmptyProjectIDs  = errors.New("included project ids cannot be empty")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrDuplicateProject = errors.New("project included twice")
	ErrPasswordNotSet   = errors.New("archive password is required")
)
