package dto

type ViewDTO struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Views - два раздела верхнего уровня.
var Views = []ViewDTO{
	{Key: "crud", Title: "CRUD Operations", Path: "/api/crud/tables"},
	{Key: "visualizations", Title: "Visualizations", Path: "/api/visualizations"},
}
