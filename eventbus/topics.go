package eventbus

// Global topic declarations, managed in one place so deployments can remap
// them by configuration later if needed.

var (
	TopicPostEvents     = NewTopic("blogs-api.post.events")
	TopicReactionEvents = NewTopic("blogs-api.reaction.events")
)

var AllTopics = []Topic{
	TopicPostEvents,
	TopicReactionEvents,
}
