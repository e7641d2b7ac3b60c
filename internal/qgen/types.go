package qgen

// TopicContext is the syllabus grounding for generation: everything the
// model needs to produce questions that belong to the topic, and everything
// the alignment check needs to judge whether they do.
type TopicContext struct {
	// TopicID is the syllabus topic identifier.
	TopicID string

	// Name is the human-readable topic name, e.g. "Fractions".
	Name string

	// Description is the syllabus text describing what the topic covers.
	Description string

	// SyllabusRef is the official syllabus reference for the topic,
	// e.g. "MATH.7.2". Generated questions inherit it unless the model
	// supplies a more specific one.
	SyllabusRef string

	// Curriculum, Grade, and Subject scope the topic, e.g. "CBSE", "7",
	// "Mathematics".
	Curriculum string
	Grade      string
	Subject    string
}

// GenerateInput holds all context for one generation run.
type GenerateInput struct {
	// Topic grounds the generated questions.
	Topic TopicContext

	// ExcludeTexts are question texts the output must not reproduce:
	// everything already in the candidate pool for this assembly. The
	// prompt carries them for best-effort uniqueness and the generator
	// re-checks each candidate against them after the fact.
	ExcludeTexts []string

	// Count is the number of admitted questions wanted. The result may
	// be shorter when candidates keep failing validation or alignment
	// within the attempt budget.
	Count int

	// Difficulty optionally pins the difficulty tag ("easy", "medium",
	// "hard"). Empty lets the model choose.
	Difficulty string
}
