// Package area holds the election-result record types and their JSON
// decoding. The same structs are encoded to BSON for storage.
package area

// Area is one constituency's result for one year.
type Area struct {
	AreaType     string      `json:"area_type"     bson:"area_type"`
	Candidates   []Candidate `json:"candidates"    bson:"candidates"`
	CountsHeld   *int8       `json:"counts_held"   bson:"counts_held"`
	Description  string      `json:"description"   bson:"description"`
	ElectionType string      `json:"election_type" bson:"election_type"`
	Electorate   *int32      `json:"electorate"    bson:"electorate"`
	Name         string      `json:"name"          bson:"name"`
	Quota        *int32      `json:"quota"         bson:"quota"`
	Spoilt       *int16      `json:"spoilt"        bson:"spoilt"`
	Turnout      *int32      `json:"turnout"       bson:"turnout"`
	Valid        *int32      `json:"valid"         bson:"valid"`
	Year         int16       `json:"year"          bson:"year"`
}

// Candidate is one candidate's result within an Area. Counts holds the
// vote total after each counting round.
type Candidate struct {
	Counts      []int32  `json:"counts"        bson:"counts"`
	Elected     bool     `json:"elected"       bson:"elected"`
	FirstPrefPc *float32 `json:"first_pref_pc" bson:"first_pref_pc"`
	FullName    string   `json:"full_name"     bson:"full_name"`
	Party       string   `json:"party"         bson:"party"`
	Transfers   *int32   `json:"transfers"     bson:"transfers"`
	TransfersPc *float32 `json:"transfers_pc"  bson:"transfers_pc"`
}

// fillDefaults replaces nil sequences with empty ones so they are stored
// as [] rather than null.
func (a *Area) fillDefaults() {
	if a.Candidates == nil {
		a.Candidates = []Candidate{}
	}
	for i := range a.Candidates {
		if a.Candidates[i].Counts == nil {
			a.Candidates[i].Counts = []int32{}
		}
	}
}
