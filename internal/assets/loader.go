package assets

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "presentation"

// DefaultScriptName is the name of the built-in script.
const DefaultScriptName = "presentation"

// AssetLoader defines the contract for loading decoration assets.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadScript loads a JavaScript file by name (without .js extension).
	// Returns ErrScriptNotFound if the script doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadScript(name string) (string, error)
}
