package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Binding and Render Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryRender,
		Message:  "Unsupported variation",
		Detail:   "The component was given a variation it does not know how to render. Rendering is aborted and no widget is bound.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryBinding,
		Message:  "Widget construction failed",
		Detail:   "The toolkit could not attach a widget to the rendered root. This usually means the markup is missing an element the widget expects, or the environment cannot measure layout.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryBinding,
		Message:  "Widget destroy failed",
		Detail:   "The toolkit reported an error while tearing a widget down.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryBinding,
		Message:  "Hook order changed between renders",
		Detail:   "Hooks must be called unconditionally and in the same order on every render. Make the hook a no-op instead of skipping the call.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E104",
	},
	"E105": {
		Category: CategoryBinding,
		Message:  "No widget toolkit bound",
		Detail:   "A widget binding ran in a root that was mounted without a toolkit. Pass component.WithToolkit when mounting, or mark the binding disabled.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E105",
	},
	"E106": {
		Category: CategoryRender,
		Message:  "Missing required property",
		Detail:   "The component requires a property that was left empty.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E106",
	},
	"E107": {
		Category: CategoryBinding,
		Message:  "Root unmounted",
		Detail:   "The operation was attempted on a root that has already been unmounted.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E107",
	},

	// ============================================
	// Protocol Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryProtocol,
		Message:  "Invalid protocol message",
		Detail:   "A message received on the widget connection could not be decoded.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryProtocol,
		Message:  "Unknown widget id",
		Detail:   "The client referenced a widget that is not live on this connection.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryProtocol,
		Message:  "Connection closed",
		Detail:   "The widget connection was closed before the command could be delivered.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E122",
	},

	// ============================================
	// Config and CLI Errors (E130-E149)
	// ============================================

	"E130": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be parsed or contains invalid values.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E130",
	},
	"E131": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The port must be between 0 and 65535.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E131",
	},
	"E140": {
		Category: CategoryCLI,
		Message:  "Unknown component",
		Detail:   "The requested component is not part of the gallery.",
		DocURL:   "https://mdc.vango.dev/docs/errors/E140",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
