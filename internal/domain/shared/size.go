package shared

// Size is a creature size category.
type Size string

const (
	SizeTiny   Size = "Tiny"
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
	SizeHuge   Size = "Huge"
)
