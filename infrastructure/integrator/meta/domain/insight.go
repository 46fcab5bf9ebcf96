package metadomain

// DailySpendInsight é uma linha de insight com time_increment=1 (um dia)
type DailySpendInsight struct {
	AccountID string `json:"account_id"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
	Spend     string `json:"spend"`
}

// InsightFields são os campos pedidos no endpoint de insights
const InsightFields = "account_id,spend"
