package value

// BodyKind identifies the encoding of a message payload.
type BodyKind int

const (
	// BodyText is a plain UTF-8 text payload.
	BodyText BodyKind = iota
	// BodyBinary is a raw byte payload.
	BodyBinary
	// BodyJSON is a structured JSON payload.
	BodyJSON
)

// String returns the string representation of the body kind.
func (k BodyKind) String() string {
	switch k {
	case BodyText:
		return "text"
	case BodyBinary:
		return "binary"
	case BodyJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Body is an immutable message payload: the parsed form of an inbound frame or
// the unframed form of an outbound response.
type Body struct {
	kind BodyKind
	text string
	data []byte
	json *Value
}

// TextBody returns a plain text body.
func TextBody(text string) *Body {
	return &Body{kind: BodyText, text: text}
}

// BinaryBody returns a binary body.
func BinaryBody(data []byte) *Body {
	return &Body{kind: BodyBinary, data: data}
}

// JSONBody returns a JSON body.
func JSONBody(v *Value) *Body {
	return &Body{kind: BodyJSON, json: v}
}

// Kind returns the encoding of the body.
func (b *Body) Kind() BodyKind {
	return b.kind
}

// Text returns the text payload. Valid only for BodyText.
func (b *Body) Text() string {
	return b.text
}

// Binary returns the byte payload. Valid only for BodyBinary.
// The returned slice is shared; callers must not modify it.
func (b *Body) Binary() []byte {
	return b.data
}

// JSON returns the structured payload. Valid only for BodyJSON.
func (b *Body) JSON() *Value {
	return b.json
}

// DecodeText interprets an inbound text payload. The payload is JSON if and
// only if it parses as JSON; anything else stays plain text.
func DecodeText(data []byte) *Body {
	if v, err := Parse(data); err == nil {
		return JSONBody(v)
	}
	return TextBody(string(data))
}
