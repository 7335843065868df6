package generation_model

// Provider describes one candidate inference backend in a fallback sequence.
type Provider struct {
	ID         string `json:"id"`
	Endpoint   string `json:"endpoint"`
	AuthScheme string `json:"auth_scheme"`
}

// ResultKind tags the two result families: synchronous providers return an
// immediate payload, asynchronous providers return a job handle.
type ResultKind string

const (
	ResultImmediate ResultKind = "immediate"
	ResultDeferred  ResultKind = "deferred"
)

// Result is the polymorphic outcome of a provider invocation. Exactly one of
// the payload fields is meaningful, selected by Kind (and ContentType for
// immediate payloads).
type Result struct {
	Kind        ResultKind
	Text        string
	Binary      []byte
	ContentType string
	Job         *JobHandle
}

func ImmediateText(text string) Result {
	return Result{Kind: ResultImmediate, Text: text}
}

func ImmediateBinary(payload []byte, contentType string) Result {
	return Result{Kind: ResultImmediate, Binary: payload, ContentType: contentType}
}

func Deferred(job JobHandle) Result {
	return Result{Kind: ResultDeferred, Job: &job}
}
