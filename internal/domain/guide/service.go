package guide

// GuideService serves the built-in emergency-response guide.
type GuideService interface {
	Topics() []Topic
	Topic(slug string) (Topic, bool)
}
