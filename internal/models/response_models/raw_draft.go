package response_models

// RawDraft is the unsanitized multi-day plan produced by the draft generator.
// When it comes from the generative provider nothing in it can be trusted;
// the sanitizer is the only consumer.
type RawDraft struct {
	Days []RawDay `json:"days"`
}

type RawDay struct {
	Activities []RawActivity `json:"activities"`
}

// RawActivity mirrors the JSON shape requested from the generative provider.
// Cost is `any` because models return it as a number or a free-text string.
type RawActivity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	Cost     any    `json:"cost"`
	Notes    string `json:"notes"`
}
