package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode = errors.New("empty language code in catalogue")
	ErrNilCatalogue      = errors.New("nil catalogue for language")

	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidYAMLStructure = errors.New("invalid YAML catalogue structure")

	ErrLoadingCancelled   = errors.New("loading catalogue cancelled")
	ErrFailedToReadFile   = errors.New("failed to read catalogue file")
	ErrFailedToParseFile  = errors.New("failed to parse catalogue file")
	ErrFailedToReadDir    = errors.New("failed to read catalogue directory")
	ErrNoCatalogueFiles   = errors.New("no catalogue files found")
	ErrUnsupportedFileExt = errors.New("unsupported catalogue file extension")
)
