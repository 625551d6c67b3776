package cli

import "github.com/tengjizhang/hnmd/internal/model"

type SavePostResponse struct {
	Post     model.Post `json:"post"`
	Inserted bool       `json:"inserted"`
	NotePath string     `json:"note_path"`
}

type RemovePostResponse struct {
	ID      int64 `json:"id"`
	Removed bool  `json:"removed"`
}
