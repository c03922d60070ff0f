package templates

// Field is one column as it appears in an artifact.
type Field struct {
	Name  string // column name, also the array key
	Rule  string // rule expression (validation only)
	Label string // attribute label (validation only)
	Media bool   // wrap in an asset URL (serialization only)
}

// Message is a validator failure message override.
type Message struct {
	Key  string
	Text string
}

// ValidationModel feeds the Validation template.
type ValidationModel struct {
	Namespace string // root namespace, e.g. "App"
	Folder    string // e.g. "ProductRequests"
	Class     string // e.g. "StoreProductRequest"
	Fields    []Field
	Messages  []Message
}

// SerializationModel feeds the Serialization template.
type SerializationModel struct {
	Namespace string
	Class     string // e.g. "ProductResource"
	Fields    []Field
}

// DeclarationModel feeds the RouteDeclaration template.
type DeclarationModel struct {
	Controller string // fully qualified controller class
	Resource   bool   // resource-collection binding
	Verb       string // HTTP method, upper case
	Path       string
	Handler    string // controller method for non-resource bindings
}

// RouteBlockModel feeds the RouteBlock template.
type RouteBlockModel struct {
	Entity       string
	Controller   string
	Declarations []string // rendered declarations
}
