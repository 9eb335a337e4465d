package icons

//go:generate go run ../internal/tools/icondocgen -out docs/icon-catalog.md
