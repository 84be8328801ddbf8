package annotation

// Separators and other symbols.
const (
	// Separator is the symbol used to separate the sub-tag values for given fluent tag.
	// Example: `fluent:"args=User,author_id"`
	//						  ^
	Separator = ","

	// TagSeparator is the symbol used to separate fluent based tags.
	// Example: `fluent:"relation=hasMany;args=CreatorID"`
	//									 ^
	TagSeparator = ";"

	// TagEqual is the symbol used to set the values for the given fluent tag.
	// Example: `fluent:"relation=hasMany"`
	//							 ^
	TagEqual = '='
)
