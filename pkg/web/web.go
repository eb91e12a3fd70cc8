package web

import "embed"

//go:embed static/*
var StaticFS embed.FS

//go:embed templates/*
var TemplatesFS embed.FS

// AppTitle is the browser title of every page.
const AppTitle = "News Article NER Demo"
