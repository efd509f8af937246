package domain

import "time"

// ProductCategory is a two-level category (depth 1 = parent, 2 = child)
type ProductCategory struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParentID  *uint64   `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	Depth     uint8     `gorm:"column:depth;default:1" json:"depth"`
	Slug      string    `gorm:"column:slug;type:varchar(50);uniqueIndex" json:"slug"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProductCategory) TableName() string { return "product_categories" }

// CategoryTreeNode is a parent category with its children, for filter UIs
type CategoryTreeNode struct {
	ID       uint64            `json:"id"`
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	Children []CategoryTreeRef `json:"children"`
}

// CategoryTreeRef is a child category reference inside the tree
type CategoryTreeRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BuildCategoryTree groups child categories under their parents.
// Children whose parent is missing are dropped.
func BuildCategoryTree(rows []ProductCategory) []CategoryTreeNode {
	childByParent := make(map[uint64][]ProductCategory)
	for _, r := range rows {
		if r.Depth == 2 && r.ParentID != nil {
			childByParent[*r.ParentID] = append(childByParent[*r.ParentID], r)
		}
	}

	tree := make([]CategoryTreeNode, 0)
	for _, r := range rows {
		if r.Depth != 1 {
			continue
		}
		node := CategoryTreeNode{
			ID:       r.ID,
			Name:     r.Name,
			Slug:     r.Slug,
			Children: make([]CategoryTreeRef, 0),
		}
		for _, c := range childByParent[r.ID] {
			node.Children = append(node.Children, CategoryTreeRef{ID: c.ID, Name: c.Name, Slug: c.Slug})
		}
		tree = append(tree, node)
	}
	return tree
}

// Product is an advertiser's item under promotion. TargetURL is the real
// destination the tracking endpoint redirects to.
type Product struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AdvertiserID uint64    `gorm:"column:advertiser_id;index" json:"advertiser_id"`
	CategoryID   *uint64   `gorm:"column:category_id;index" json:"category_id,omitempty"`
	Name         string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Price        *float64  `gorm:"column:price" json:"price,omitempty"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	ImageURL     *string   `gorm:"column:image_url;type:varchar(500)" json:"image_url,omitempty"`
	TargetURL    string    `gorm:"column:target_url;type:varchar(500)" json:"target_url"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Category *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string { return "products" }

// ProductResponse is the public product view. Price is nil for anonymous
// callers (masking applied by the service layer).
type ProductResponse struct {
	ID          uint64           `json:"id"`
	Name        string           `json:"name"`
	Price       *float64         `json:"price,omitempty"`
	Description string           `json:"description"`
	ImageURL    *string          `json:"image_url,omitempty"`
	Category    *ProductCategory `json:"category,omitempty"`
}

// ToResponse converts Product to its public representation.
// masked hides the price for anonymous callers.
func (p *Product) ToResponse(masked bool) *ProductResponse {
	resp := &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
	if masked {
		resp.Price = nil
	}
	return resp
}
