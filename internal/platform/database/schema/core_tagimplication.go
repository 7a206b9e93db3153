package schema

// CoreTagImplicationTable represents the 'core.tagimplication' table
type CoreTagImplicationTable struct {
	Table          string
	ID             string
	AntecedentName string
	ConsequentName string
	Status         string
	ApproverID     string
	CreatedAt      string
	UpdatedAt      string
}

// CoreTagImplication is the schema definition for core.tagimplication
var CoreTagImplication = CoreTagImplicationTable{
	Table:          "core.tagimplication",
	ID:             "id",
	AntecedentName: "antecedentname",
	ConsequentName: "consequentname",
	Status:         "status",
	ApproverID:     "approverid",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}
