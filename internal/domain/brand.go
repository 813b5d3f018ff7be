package domain

// Brand описывает бренд товаров
type Brand struct {
	Base
	Name         string
	Slug         string
	Description  *string
	LogoURL      *string
	WebsiteURL   *string
	IsActive     bool
	DisplayOrder int
}

func NewBrand(name, slug string) *Brand {
	return &Brand{
		Base:     NewBase(),
		Name:     name,
		Slug:     slug,
		IsActive: true,
	}
}
