package dto

type PublishVideoRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
	IsPublished *bool  `json:"is_published" form:"is_published"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type CreateTweetRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}
