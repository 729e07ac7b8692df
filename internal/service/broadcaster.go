package service

// Broadcaster pushes live events to the owner dashboard connection of a
// survey, identified by survey key. Implemented by the ws hub.
type Broadcaster interface {
	BroadcastToOwner(surveyKey string, event string, payload interface{})
}
