package segment

type Result struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}
