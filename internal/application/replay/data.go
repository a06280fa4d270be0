package replay

// FrameInput records the action snapshot for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	In bool `json:"in,omitempty"` // Interact
	Sw bool `json:"sw,omitempty"` // Character switch
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"` // starting scene name
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
