package models

// TypeTag is a column's inferred semantic type, rendered verbatim in the
// report's Type column.
type TypeTag string

const (
	// TagInteger marks columns of whole numbers.
	TagInteger TypeTag = "integer"
	// TagDecimal marks columns of decimal numbers.
	TagDecimal TypeTag = "decimal"
	// TagDateTime marks columns of dates or timestamps.
	TagDateTime TypeTag = "date/time"
	// TagBoolean marks columns of true/false values.
	TagBoolean TypeTag = "boolean"
	// TagEmail marks text columns whose values look like email addresses.
	TagEmail TypeTag = "email-like text"
	// TagName marks text columns whose header suggests person names.
	TagName TypeTag = "name-like text"
	// TagText marks everything else, including empty and mixed columns.
	TagText TypeTag = "text"
)
