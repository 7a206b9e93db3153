package schema

// SystemModActionTable represents the 'system.modaction' table
type SystemModActionTable struct {
	Table     string
	ID        string
	ActorID   string
	Kind      string
	Payload   string
	CreatedAt string
}

var SystemModAction = SystemModActionTable{
	Table:     "system.modaction",
	ID:        "id",
	ActorID:   "actorid",
	Kind:      "kind",
	Payload:   "payload",
	CreatedAt: "createdat",
}
