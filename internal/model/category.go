package model

type Category struct {
	Slug string `json:"slug" validate:"required,slug"`
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}
