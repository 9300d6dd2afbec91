package constant

type DefaultPriceItem struct {
	Key         string
	Name        string
	PricePerRai string
}

// DefaultCrops seeds the crop price list.
var DefaultCrops = []DefaultPriceItem{
	{Key: "rice", Name: "ข้าว", PricePerRai: "300"},
	{Key: "corn", Name: "ข้าวโพด", PricePerRai: "320"},
	{Key: "sugarcane", Name: "อ้อย", PricePerRai: "350"},
	{Key: "cassava", Name: "มันสำปะหลัง", PricePerRai: "320"},
	{Key: "durian", Name: "ทุเรียน", PricePerRai: "500"},
	{Key: "longan", Name: "ลำไย", PricePerRai: "450"},
}

// DefaultSprays seeds the spray price list.
var DefaultSprays = []DefaultPriceItem{
	{Key: "herbicide", Name: "ยาฆ่าหญ้า", PricePerRai: "100"},
	{Key: "insecticide", Name: "ยาฆ่าแมลง", PricePerRai: "120"},
	{Key: "fungicide", Name: "ยาป้องกันเชื้อรา", PricePerRai: "120"},
	{Key: "fertilizer", Name: "ปุ๋ยทางใบ", PricePerRai: "80"},
	{Key: "hormone", Name: "ฮอร์โมนพืช", PricePerRai: "80"},
}

const (
	PriceKindCrop  = "crop"
	PriceKindSpray = "spray"
)
