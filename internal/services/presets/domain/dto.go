// Package domain holds DTOs for the preset http and service contracts
package domain

import (
	dash "themewatch/internal/services/dashboard/domain"
)

// CreateInput saves the current filter combination under a name
type CreateInput struct {
	ThemeID string           `json:"theme_id" validate:"required,min=1,max=64" example:"theme-1"`
	Name    string           `json:"name" validate:"required,min=1,max=120" example:"negative press, august"`
	Filters dash.FilterState `json:"filters"`
}

// ListInput lists the presets saved for a theme
type ListInput struct {
	ThemeID string `json:"theme_id" validate:"required,min=1,max=64" example:"theme-1"`
}

// GetInput fetches one preset
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4" example:"6f1e1d8a-1111-4111-8111-9f1e1d8a1111"`
}

// RenameInput changes a preset's display name
type RenameInput struct {
	ID   string `json:"id" validate:"required,uuid4"`
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// DeleteInput removes one preset
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// Preset is a saved filter combination
type Preset struct {
	ID        string           `json:"id"`
	ThemeID   string           `json:"theme_id"`
	Name      string           `json:"name"`
	Filters   dash.FilterState `json:"filters"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}
