package models

type PackageType string

const (
	PackageEconomy PackageType = "economy"
	PackageLuxury  PackageType = "luxury"
	PackageVIP     PackageType = "vip"
)

func (t PackageType) Valid() bool {
	switch t {
	case PackageEconomy, PackageLuxury, PackageVIP:
		return true
	}
	return false
}

type Package struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       int         `json:"price"` // per person in USD
	Features    []string    `json:"features" gorm:"serializer:json"`
	IsPopular   bool        `json:"isPopular"`
	Type        PackageType `json:"type"`
}
