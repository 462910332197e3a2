package models

// Catalog facet enums. Values match the backend contract verbatim,
// including accented characters.

type Brand string

const (
	BrandNike        Brand = "NIKE"
	BrandNewBalance  Brand = "NEW BALANCE"
	BrandCat         Brand = "CAT"
	BrandLee         Brand = "LEE"
	BrandSkechers    Brand = "SKECHERS"
	BrandConverse    Brand = "CONVERSE"
	BrandAdidas      Brand = "ADIDAS"
	BrandPuma        Brand = "PUMA"
	BrandCrepProtect Brand = "CREP PROTECT"
	BrandDKNY        Brand = "DKNY"
	BrandUnderArmour Brand = "UNDER ARMOUR"
	BrandReebok      Brand = "REEBOK"
	BrandLevis       Brand = "LEVIS"
	BrandEverlast    Brand = "EVERLAST"
)

type Gender string

const (
	GenderMen    Gender = "HOMBRE"
	GenderWomen  Gender = "MUJER"
	GenderBoy    Gender = "NIÑO"
	GenderGirl   Gender = "NIÑA"
	GenderUnisex Gender = "UNISEX"
)

type GarmentType string

const (
	GarmentTShirt   GarmentType = "CAMISETA"
	GarmentShirt    GarmentType = "CAMISA"
	GarmentBlouse   GarmentType = "BLUSA"
	GarmentHoodie   GarmentType = "SUDADERA"
	GarmentSweater  GarmentType = "SUETER"
	GarmentPants    GarmentType = "PANTALON"
	GarmentSkirt    GarmentType = "FALDA"
	GarmentShorts   GarmentType = "SHORT"
	GarmentJeans    GarmentType = "JEANS"
	GarmentDress    GarmentType = "VESTIDO"
	GarmentJacket   GarmentType = "CHAQUETA"
	GarmentCoat     GarmentType = "ABRIGO"
	GarmentScarf    GarmentType = "BUFANDA"
	GarmentHat      GarmentType = "SOMBRERO"
	GarmentBag      GarmentType = "BOLSO"
	GarmentShoes    GarmentType = "ZAPATOS"
	GarmentBoots    GarmentType = "BOTAS"
	GarmentSandals  GarmentType = "SANDALIAS"
	GarmentSneakers GarmentType = "ZAPATILLAS"
	GarmentBikini   GarmentType = "BIKINI"
	GarmentSwimsuit GarmentType = "BAÑADOR"
)

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
	SizeOne Size = "TALLA UNICA"
)

type Season string

const (
	SeasonSpring Season = "PRIMAVERA"
	SeasonSummer Season = "VERANO"
	SeasonFall   Season = "OTOÑO"
	SeasonWinter Season = "INVIERNO"
)

type Style string

const (
	StyleCasual  Style = "CASUAL"
	StyleFormal  Style = "FORMAL"
	StyleSport   Style = "DEPORTIVO"
	StyleElegant Style = "ELEGANTE"
	StyleVintage Style = "VINTAGE"
	StyleUrban   Style = "URBANO"
)

type Material string

const (
	MaterialCotton    Material = "ALGODON"
	MaterialLinen     Material = "LINO"
	MaterialWool      Material = "LANA"
	MaterialLeather   Material = "CUERO"
	MaterialDenim     Material = "DENIM"
	MaterialPolyester Material = "POLIESTER"
	MaterialLycra     Material = "LYCRA"
)

type Use string

const (
	UseDaily      Use = "DIARIO"
	UseOccasional Use = "OCASIONAL"
	UseSport      Use = "DEPORTIVO"
	UseFormal     Use = "FORMAL"
	UseParty      Use = "FIESTA"
)

// Product is one catalog entry as served by the backend.
type Product struct {
	ID       int          `json:"id"`
	Name     string       `json:"nombre"`
	Price    float64      `json:"precio"`
	ImageURL string       `json:"imagenUrl"`
	Brand    *Brand       `json:"marca"`
	Gender   *Gender      `json:"genero"`
	Garment  *GarmentType `json:"tipoPrenda"`
	Size     *Size        `json:"talla"`
	Season   *Season      `json:"temporada"`
	Style    *Style       `json:"estilo"`
	Material *Material    `json:"material"`
	Use      *Use         `json:"uso"`
}
