package persistent

import (
	"encoding/json"

	"portfolio-cms/internal/entity"
	"portfolio-cms/internal/model"

	"gorm.io/datatypes"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	// Anything that isn't a JSON array of strings degrades to no images.
	images := []string{}
	if len(m.Images) > 0 {
		if err := json.Unmarshal(m.Images, &images); err != nil {
			images = []string{}
		}
	}

	return &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Subject:   m.Subject,
		Body:      m.Body,
		Images:    images,
		CreatedAt: m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	images := e.Images
	if images == nil {
		images = []string{}
	}
	raw, _ := json.Marshal(images)

	return &model.PostModel{
		ID:        e.ID,
		Title:     e.Title,
		Subject:   e.Subject,
		Body:      e.Body,
		Images:    datatypes.JSON(raw),
		CreatedAt: e.CreatedAt,
	}
}
