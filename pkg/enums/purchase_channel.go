package enums

// PurchaseChannelLarge is the coarse purchase route recorded on an order.
type PurchaseChannelLarge string

const (
	PurchaseChannelInternet       PurchaseChannelLarge = "인터넷"
	PurchaseChannelOnlineMarket   PurchaseChannelLarge = "온라인마켓"
	PurchaseChannelPublicFacility PurchaseChannelLarge = "대중시설"
	PurchaseChannelEvent          PurchaseChannelLarge = "행사"
	PurchaseChannelLargeOther     PurchaseChannelLarge = "기타"
	PurchaseChannelCSTeam         PurchaseChannelLarge = "CS팀_토스"
	PurchaseChannelPhone          PurchaseChannelLarge = "전화"
	PurchaseChannelNewspaper      PurchaseChannelLarge = "신문"
	PurchaseChannelBroadcast      PurchaseChannelLarge = "방송"
	PurchaseChannelEmailMarketing PurchaseChannelLarge = "이메일마케팅"
)

var validPurchaseChannelsLarge = []PurchaseChannelLarge{
	PurchaseChannelInternet,
	PurchaseChannelOnlineMarket,
	PurchaseChannelPublicFacility,
	PurchaseChannelEvent,
	PurchaseChannelLargeOther,
	PurchaseChannelCSTeam,
	PurchaseChannelPhone,
	PurchaseChannelNewspaper,
	PurchaseChannelBroadcast,
	PurchaseChannelEmailMarketing,
}

// String implements fmt.Stringer.
func (p PurchaseChannelLarge) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PurchaseChannelLarge.
func (p PurchaseChannelLarge) IsValid() bool {
	return contains(validPurchaseChannelsLarge, p)
}

// ParsePurchaseChannelLarge converts raw input into a PurchaseChannelLarge.
func ParsePurchaseChannelLarge(value string) (PurchaseChannelLarge, error) {
	return parse(validPurchaseChannelsLarge, value, "purchase channel")
}

// PurchaseChannelSmall is the fine-grained purchase route recorded on an order.
type PurchaseChannelSmall string

const (
	PurchaseChannelInboundCall PurchaseChannelSmall = "전화수신"
	PurchaseChannelStore       PurchaseChannelSmall = "매장"
	PurchaseChannelSample      PurchaseChannelSmall = "샘플"
	PurchaseChannelText        PurchaseChannelSmall = "문자"
	PurchaseChannelMonthly     PurchaseChannelSmall = "월간지"
	PurchaseChannelSponsor     PurchaseChannelSmall = "스폰서"
	PurchaseChannelDirectPromo PurchaseChannelSmall = "직영홍보"
	PurchaseChannelReferral    PurchaseChannelSmall = "지인소개"
	PurchaseChannelAgency      PurchaseChannelSmall = "대리점"
	PurchaseChannelSmallOther  PurchaseChannelSmall = "기타"
)

var validPurchaseChannelsSmall = []PurchaseChannelSmall{
	PurchaseChannelInboundCall,
	PurchaseChannelStore,
	PurchaseChannelSample,
	PurchaseChannelText,
	PurchaseChannelMonthly,
	PurchaseChannelSponsor,
	PurchaseChannelDirectPromo,
	PurchaseChannelReferral,
	PurchaseChannelAgency,
	PurchaseChannelSmallOther,
}

// String implements fmt.Stringer.
func (p PurchaseChannelSmall) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PurchaseChannelSmall.
func (p PurchaseChannelSmall) IsValid() bool {
	return contains(validPurchaseChannelsSmall, p)
}

// ParsePurchaseChannelSmall converts raw input into a PurchaseChannelSmall.
func ParsePurchaseChannelSmall(value string) (PurchaseChannelSmall, error) {
	return parse(validPurchaseChannelsSmall, value, "purchase channel")
}
