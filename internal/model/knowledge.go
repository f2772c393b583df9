package model

// Knowledge base: a category tree with file-backed materials, independent
// of the course hierarchy and never gated by assignments.
type KnowledgeCategory struct {
	BaseModel
	Name        string              `gorm:"size:200;not null" json:"name"`
	Description string              `gorm:"size:1000" json:"description"`
	ParentID    *uint               `gorm:"index" json:"parentId"`
	Children    []KnowledgeCategory `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

func (KnowledgeCategory) TableName() string {
	return "knowledge_categories"
}

type KnowledgeMaterial struct {
	BaseModel
	CategoryID  uint              `gorm:"not null;index" json:"categoryId"`
	Category    KnowledgeCategory `json:"category,omitempty"`
	Title       string            `gorm:"size:200;not null" json:"title"`
	Description string            `gorm:"size:1000" json:"description"`
	FileURL     string            `gorm:"size:500" json:"fileUrl"`
	FileType    string            `gorm:"size:100" json:"fileType"`
	FileSize    int64             `json:"fileSize"`
}

func (KnowledgeMaterial) TableName() string {
	return "knowledge_materials"
}
