package model

// IndicatorCode identifies one of the fixed risk/profitability ratios
// published on the indicator sheet. The closed set below mirrors the
// regulator's layout; identity is the sheet row, not the cell text.
type IndicatorCode string

const (
	IndSolvency             IndicatorCode = "SOL"
	IndUnproductiveAssets   IndicatorCode = "AIN"
	IndPortfolioToAssets    IndicatorCode = "CAR_ACT"
	IndInvestmentsToAssets  IndicatorCode = "INV_ACT"
	IndShareHousingPublic   IndicatorCode = "PART_INMOB_VIP"
	IndShareProductive      IndicatorCode = "PART_PROD"
	IndShareConsumer        IndicatorCode = "PART_CONS"
	IndShareRealEstate      IndicatorCode = "PART_INMOB"
	IndShareMicrocredit     IndicatorCode = "PART_MICRO"
	IndShareSocialHousing   IndicatorCode = "PART_VIS"
	IndShareEducation       IndicatorCode = "PART_EDU"
	IndSharePublicInvest    IndicatorCode = "PART_INV_PUB"
	IndNPLTotal             IndicatorCode = "MOR_TOT"
	IndNPLHousingPublic     IndicatorCode = "MOR_INMOB_VIP"
	IndNPLProductive        IndicatorCode = "MOR_PROD"
	IndNPLConsumer          IndicatorCode = "MOR_CONS"
	IndNPLRealEstate        IndicatorCode = "MOR_INMOB"
	IndNPLMicrocredit       IndicatorCode = "MOR_MICRO"
	IndNPLSocialHousing     IndicatorCode = "MOR_VIS"
	IndNPLEducation         IndicatorCode = "MOR_EDU"
	IndNPLPublicInvest      IndicatorCode = "MOR_INV_PUB"
	IndCoverageTotal        IndicatorCode = "COB_TOT"
	IndCoverageHousingPub   IndicatorCode = "COB_INMOB_VIP"
	IndCoverageProductive   IndicatorCode = "COB_PROD"
	IndCoverageConsumer     IndicatorCode = "COB_CONS"
	IndCoverageRealEstate   IndicatorCode = "COB_INMOB"
	IndCoverageMicrocredit  IndicatorCode = "COB_MICRO"
	IndCoverageSocialHous   IndicatorCode = "COB_VIS"
	IndCoverageEducation    IndicatorCode = "COB_EDU"
	IndCoveragePublicInvest IndicatorCode = "COB_INV_PUB"
	IndProductiveToCostly   IndicatorCode = "AP_PC"
	IndOpexToMargin         IndicatorCode = "GO_MNF"
	IndStaffToAssets        IndicatorCode = "GP_ACT"
	IndOpexToAssets         IndicatorCode = "GO_ACT"
	IndROA                  IndicatorCode = "ROA"
	IndROE                  IndicatorCode = "ROE"
	IndSpreadDependence     IndicatorCode = "DEP_SPREAD"
	IndGapDependence        IndicatorCode = "DEP_BRECHA"
	IndLiquidity            IndicatorCode = "LIQ"
)

// Category groups indicators for the dashboard's CAMEL-style views.
type Category string

const (
	CategoryCapital    Category = "Capital"
	CategoryAssets     Category = "Assets"
	CategoryManagement Category = "Management"
	CategoryEarnings   Category = "Earnings"
	CategoryLiquidity  Category = "Liquidity"
	CategoryPortfolio  Category = "Portfolio-Composition"
)

// IndicatorRow binds a 1-based sheet row to an indicator. NameCol is the
// column holding the display name; it varies between row blocks.
type IndicatorRow struct {
	Row      int
	Code     IndicatorCode
	Name     string
	NameCol  int
	Category Category
}

// IndicatorRows is the positional contract for the indicator sheet. Rows
// absent from this table are never read, whatever their content. Gaps
// (rows 29, 42, ...) are blank separator rows in the source layout.
var IndicatorRows = []IndicatorRow{
	{6, IndSolvency, "Solvency Ratio PTC/APPR", 1, CategoryCapital},
	{9, IndUnproductiveAssets, "Net Unproductive Assets / Total Assets", 1, CategoryAssets},
	{10, IndPortfolioToAssets, "Gross Loan Portfolio / Total Assets", 1, CategoryAssets},
	{11, IndInvestmentsToAssets, "Investments / Total Assets", 1, CategoryAssets},

	{12, IndShareHousingPublic, "Share of Public-Interest Housing Credit", 2, CategoryPortfolio},
	{13, IndShareProductive, "Share of Productive Credit", 2, CategoryPortfolio},
	{14, IndShareConsumer, "Share of Consumer Credit", 2, CategoryPortfolio},
	{15, IndShareRealEstate, "Share of Real-Estate Credit", 2, CategoryPortfolio},
	{16, IndShareMicrocredit, "Share of Microcredit", 2, CategoryPortfolio},
	{17, IndShareSocialHousing, "Share of Social-Interest Housing Credit", 2, CategoryPortfolio},
	{18, IndShareEducation, "Share of Education Credit", 2, CategoryPortfolio},
	{19, IndSharePublicInvest, "Share of Public-Investment Credit", 2, CategoryPortfolio},

	{22, IndNPLTotal, "Total Delinquency", 2, CategoryAssets},
	{23, IndNPLHousingPublic, "Delinquency, Public-Interest Housing Credit", 2, CategoryAssets},
	{24, IndNPLProductive, "Delinquency, Productive Credit", 2, CategoryAssets},
	{25, IndNPLConsumer, "Delinquency, Consumer Credit", 2, CategoryAssets},
	{26, IndNPLRealEstate, "Delinquency, Real-Estate Credit", 2, CategoryAssets},
	{27, IndNPLMicrocredit, "Delinquency, Microcredit", 2, CategoryAssets},
	{28, IndNPLSocialHousing, "Delinquency, Social-Interest Housing Credit", 2, CategoryAssets},
	{30, IndNPLEducation, "Delinquency, Education Credit", 2, CategoryAssets},
	{31, IndNPLPublicInvest, "Delinquency, Public-Investment Credit", 2, CategoryAssets},

	{33, IndCoverageTotal, "Total Portfolio Coverage", 2, CategoryAssets},
	{34, IndCoverageHousingPub, "Coverage, Public-Interest Housing Credit", 2, CategoryAssets},
	{35, IndCoverageProductive, "Coverage, Productive Credit", 2, CategoryAssets},
	{36, IndCoverageConsumer, "Coverage, Consumer Credit", 2, CategoryAssets},
	{37, IndCoverageRealEstate, "Coverage, Real-Estate Credit", 2, CategoryAssets},
	{38, IndCoverageMicrocredit, "Coverage, Microcredit", 2, CategoryAssets},
	{39, IndCoverageSocialHous, "Coverage, Social-Interest Housing Credit", 2, CategoryAssets},
	{40, IndCoverageEducation, "Coverage, Education Credit", 2, CategoryAssets},
	{41, IndCoveragePublicInvest, "Coverage, Public-Investment Credit", 2, CategoryAssets},

	{43, IndProductiveToCostly, "Productive Assets / Liabilities with Cost", 1, CategoryManagement},
	{44, IndOpexToMargin, "Operating Expenses / Net Financial Margin", 1, CategoryManagement},
	{45, IndStaffToAssets, "Staff Expenses / Average Total Assets", 1, CategoryManagement},
	{46, IndOpexToAssets, "Operating Expenses / Average Total Assets", 1, CategoryManagement},

	{48, IndROA, "Operating Return on Assets (ROA)", 1, CategoryEarnings},
	{49, IndROE, "Return on Equity (ROE)", 1, CategoryEarnings},
	{51, IndSpreadDependence, "Spread Dependence", 1, CategoryEarnings},
	{52, IndGapDependence, "Gap Dependence", 1, CategoryEarnings},

	{54, IndLiquidity, "Liquidity Ratio: Available Funds / Total Deposits", 1, CategoryLiquidity},
}
