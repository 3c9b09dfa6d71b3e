package entities

// Entity is a minimal marker interface embedded in domain structs and
// used as the generic constraint of the messaging layer.
type Entity interface{}
