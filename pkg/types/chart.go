package types

type ChartKind string

const (
	ChartPie  ChartKind = "pie"
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
	ChartMap  ChartKind = "map"
)

type Series struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// Chart - результат одного агрегирующего запроса.
// Labels и каждый Series.Data имеют одинаковую длину.
type Chart struct {
	Key    string    `json:"key"`
	Title  string    `json:"title"`
	Kind   ChartKind `json:"kind"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	Labels []string  `json:"labels"`
	Series []Series  `json:"series"`
}

// Empty сообщает, что для графика нет данных.
func (c *Chart) Empty() bool { return len(c.Labels) == 0 }

type ChartInfo struct {
	Key   string    `json:"key"`
	Title string    `json:"title"`
	Kind  ChartKind `json:"kind"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MapPoint struct {
	BranchID    int64   `json:"branch_id"`
	BranchName  string  `json:"branch_name"`
	FullAddress string  `json:"full_address"`
	ZipCode     string  `json:"zip_code"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type BranchMap struct {
	Points  []MapPoint   `json:"points"`
	Center  *Coordinates `json:"center,omitempty"`
	Message string       `json:"message,omitempty"`
}
