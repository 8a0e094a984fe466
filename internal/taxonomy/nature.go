package taxonomy

// NatureGroup labels a two-digit nature prefix for report rendering.
type NatureGroup struct {
	Prefix int
	Label  string
}

// NatureGroups maps nature prefixes to their accounting-plan labels, in
// plan order.
var NatureGroups = []NatureGroup{
	{30, "Authorities and staff"},
	{31, "Goods, services, merchandise"},
	{32, "Interest expense"},
	{33, "Depreciation"},
	{35, "Reimbursements, contributions, and subsidies to public authorities"},
	{36, "Aid and subsidies"},
	{38, "Allocations to special funds and financing"},
	{39, "Internal allocations"},
	{40, "Taxes"},
	{41, "Licenses, concessions"},
	{42, "Income from assets"},
	{43, "Taxes, fees, proceeds from sales"},
	{44, "Shares in cantonal revenues"},
	{45, "Contributions and reimbursements from public authorities"},
	{46, "Other benefits and subsidies"},
	{48, "Withdrawals from special funds and financing"},
	{49, "Internal allocations"},
}

// NatureGroupLabel returns the label for a three-digit nature code.
func NatureGroupLabel(nature int) (string, bool) {
	prefix := nature / 10
	for _, g := range NatureGroups {
		if g.Prefix == prefix {
			return g.Label, true
		}
	}
	return "", false
}
