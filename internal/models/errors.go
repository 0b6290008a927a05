package models

import "errors"

// Error constants for catalog, contact and blog operations
var (
	ErrCNAECodeExists = errors.New("CNAE code already exists")
	ErrCNAENotFound   = errors.New("CNAE not found")
	ErrPostNotFound   = errors.New("blog post not found")
)
