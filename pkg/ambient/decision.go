package ambient

// Decision is the model's verdict on whether to reach out. A decision
// below the configured confidence floor is discarded without sending.
type Decision struct {
	Send       bool    `json:"send"`
	Message    string  `json:"message,omitempty"`
	Priority   string  `json:"priority,omitempty"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// decisionSchema validates ambient mission output before it is trusted.
var decisionSchema = []byte(`{
	"type": "object",
	"properties": {
		"send": {"type": "boolean"},
		"message": {"type": "string"},
		"priority": {"type": "string", "enum": ["silent", "ambient", "conversation", "urgent"]},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"reasoning": {"type": "string"}
	},
	"required": ["send", "confidence"],
	"additionalProperties": false
}`)
