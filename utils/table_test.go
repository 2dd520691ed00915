package utils

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

type tableRow struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Owner struct {
		Username string `json:"username"`
	} `json:"owner"`
}

func makeRow(name string, price float64, qty int, owner string) tableRow {
	row := tableRow{Name: name, Price: price, Qty: qty}
	row.Owner.Username = owner
	return row
}

func tableColumns() []TableColumn[tableRow] {
	return []TableColumn[tableRow]{
		{Key: "name", Sortable: true, Filterable: true},
		{Key: "price", Sortable: true, Summary: SummarySum},
		{Key: "qty", Sortable: true, Summary: SummaryAvg},
		{Key: "owner", Path: "owner.username", Filterable: true, Summary: SummaryCount},
	}
}

func tableData() []tableRow {
	return []tableRow{
		makeRow("Bún bò", 120, 1, "an"),
		makeRow("Trà sữa", 60, 2, "an"),
		makeRow("Phở", 90, 1, "binh"),
		makeRow("Cơm gà", 100, 3, "chi"),
		makeRow("Bún riêu", 80, 1, "binh"),
	}
}

func names(rows []tableRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestTableFilter(t *testing.T) {
	table := NewTable(tableColumns(), tableData())

	table.SetFilter("name", "bún")
	got := names(table.FilteredRows())
	want := []string{"Bún bò", "Bún riêu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter name=bún: %v, muốn %v", got, want)
	}

	// Filter trên path lồng nhau
	table.SetFilter("name", "")
	table.SetFilter("owner", "binh")
	got = names(table.FilteredRows())
	want = []string{"Phở", "Bún riêu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter owner=binh: %v, muốn %v", got, want)
	}

	// Cột không Filterable thì bỏ qua
	table.SetFilter("owner", "")
	table.SetFilter("price", "120")
	if len(table.FilteredRows()) != 5 {
		t.Error("filter trên cột không Filterable phải bị bỏ qua")
	}
}

func TestTableToggleSortCycle(t *testing.T) {
	table := NewTable(tableColumns(), tableData())

	table.ToggleSort("price")
	if table.SortDir() != SortAsc {
		t.Fatal("lần bấm đầu phải là asc")
	}
	got := names(table.FilteredRows())
	want := []string{"Trà sữa", "Bún riêu", "Phở", "Cơm gà", "Bún bò"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sort asc: %v, muốn %v", got, want)
	}

	table.ToggleSort("price")
	if table.SortDir() != SortDesc {
		t.Fatal("lần hai phải là desc")
	}
	got = names(table.FilteredRows())
	want = []string{"Bún bò", "Cơm gà", "Phở", "Bún riêu", "Trà sữa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sort desc: %v, muốn %v", got, want)
	}

	table.ToggleSort("price")
	if table.SortDir() != SortNone || table.SortKey() != "" {
		t.Fatal("lần ba phải về không sắp xếp")
	}
	got = names(table.FilteredRows())
	if !reflect.DeepEqual(got, names(tableData())) {
		t.Errorf("hết sort phải về thứ tự gốc: %v", got)
	}

	// Bấm cột khác thì bắt đầu lại từ asc
	table.ToggleSort("price")
	table.ToggleSort("name")
	if table.SortKey() != "name" || table.SortDir() != SortAsc {
		t.Error("đổi cột sort phải reset về asc")
	}
}

func TestTableStableSort(t *testing.T) {
	data := []tableRow{
		makeRow("A", 100, 1, "x"),
		makeRow("B", 100, 1, "x"),
		makeRow("C", 50, 1, "x"),
	}
	table := NewTable(tableColumns(), data)
	table.ToggleSort("price")

	got := names(table.FilteredRows())
	want := []string{"C", "A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sort phải ổn định với giá trị bằng nhau: %v, muốn %v", got, want)
	}
}

func TestTablePagination(t *testing.T) {
	table := NewTable(tableColumns(), tableData())
	table.SetPageSize(2)

	if table.PageCount() != 3 {
		t.Errorf("PageCount = %d, muốn 3", table.PageCount())
	}

	// Ghép các trang lại phải ra đúng tập đã lọc
	var all []tableRow
	for page := 1; page <= table.PageCount(); page++ {
		table.SetPage(page)
		all = append(all, table.VisibleRows()...)
	}
	if !reflect.DeepEqual(names(all), names(table.FilteredRows())) {
		t.Errorf("ghép các trang: %v, muốn %v", names(all), names(table.FilteredRows()))
	}

	// Trang vượt quá thì trả rỗng
	table.SetPage(99)
	if len(table.VisibleRows()) != 0 {
		t.Error("trang vượt quá phải rỗng")
	}

	// Đổi filter quay về trang 1
	table.SetFilter("name", "bún")
	if table.Page() != 1 {
		t.Error("đổi filter phải reset về trang 1")
	}

	table.SetFilter("name", "")
	table.SetPage(3)
	table.SetPageSize(10)
	if table.Page() != 1 {
		t.Error("đổi cỡ trang phải reset về trang 1")
	}

	table.DisablePagination()
	if len(table.VisibleRows()) != 5 || table.PageCount() != 1 {
		t.Error("tắt phân trang thì hiển thị toàn bộ trên một trang")
	}
}

func TestTableSummaryFixedVsVisible(t *testing.T) {
	table := NewTable(tableColumns(), tableData())
	table.SetPageSize(2)

	// Mặc định summary tính trên trang đang hiển thị
	row := table.SummaryRow()
	if row["price"] != "180" { // 120 + 60
		t.Errorf("sum trang 1 = %q, muốn 180", row["price"])
	}
	if row["owner"] != "2" {
		t.Errorf("count trang 1 = %q, muốn 2", row["owner"])
	}

	// SummaryFixed: tính trên toàn bộ tập đã lọc, không đổi theo trang
	table.SummaryFixed = true
	row = table.SummaryRow()
	if row["price"] != "450" {
		t.Errorf("sum toàn tập = %q, muốn 450", row["price"])
	}
	table.SetPage(2)
	row2 := table.SummaryRow()
	if row2["price"] != row["price"] {
		t.Error("SummaryFixed không được đổi theo trang")
	}
	if row["qty"] != "1.6" { // (1+2+1+3+1)/5
		t.Errorf("avg toàn tập = %q, muốn 1.6", row["qty"])
	}
}

func TestTableSummaryAvgSkipsNaN(t *testing.T) {
	data := []tableRow{
		makeRow("A", 100, 1, "x"),
		makeRow("B", math.NaN(), 1, "x"),
		makeRow("C", 200, 1, "x"),
	}
	table := NewTable(tableColumns(), data)
	table.DisablePagination()

	cols := table.Columns
	for i := range cols {
		if cols[i].Key == "price" {
			cols[i].Summary = SummaryAvg
		}
	}

	row := table.SummaryRow()
	if row["price"] != "150" {
		t.Errorf("avg bỏ NaN = %q, muốn 150", row["price"])
	}
}

func TestTableSummaryCustom(t *testing.T) {
	cols := tableColumns()
	cols[0].Summary = SummaryCustom
	cols[0].SummaryFunc = func(visible []tableRow, filtered []tableRow, col TableColumn[tableRow]) string {
		return fmt.Sprintf("%d/%d", len(visible), len(filtered))
	}

	table := NewTable(cols, tableData())
	table.SetPageSize(2)

	row := table.SummaryRow()
	if row["name"] != "2/5" {
		t.Errorf("custom summary = %q, muốn 2/5", row["name"])
	}
}

func TestTableRenderCell(t *testing.T) {
	cols := tableColumns()
	cols[1].Render = func(value any, record tableRow, rowIndex int) string {
		return FormatTWD(value.(float64))
	}
	table := NewTable(cols, tableData())

	rows := table.VisibleRows()
	if got := table.RenderCell(cols[1], rows[0], 0); got != "NT$120" {
		t.Errorf("RenderCell = %q, muốn NT$120", got)
	}
	if got := table.RenderCell(cols[0], rows[0], 0); got != "Bún bò" {
		t.Errorf("RenderCell mặc định = %q, muốn stringify", got)
	}
}

func TestResolvePath(t *testing.T) {
	row := makeRow("Bún bò", 120, 1, "an")

	if got := ResolvePath(row, "owner.username"); got != "an" {
		t.Errorf("path lồng nhau = %v, muốn an", got)
	}
	if got := ResolvePath(&row, "price"); got != 120.0 {
		t.Errorf("qua pointer = %v, muốn 120", got)
	}
	// Tên field không phân biệt hoa thường, json tag cũng khớp
	if got := ResolvePath(row, "Name"); got != "Bún bò" {
		t.Errorf("theo tên field = %v", got)
	}
	if got := ResolvePath(row, "owner.nope"); got != nil {
		t.Errorf("path sai phải trả nil, got %v", got)
	}
	if got := ResolvePath(row, "name.deeper"); got != nil {
		t.Errorf("đi sâu qua giá trị lá phải trả nil, got %v", got)
	}

	m := map[string]any{"a": map[string]any{"b": 7}}
	if got := ResolvePath(m, "a.b"); got != 7 {
		t.Errorf("map lồng nhau = %v, muốn 7", got)
	}

	var nilPtr *tableRow
	if got := ResolvePath(nilPtr, "name"); got != nil {
		t.Errorf("nil pointer phải trả nil, got %v", got)
	}
}

func TestCompareValuesMixed(t *testing.T) {
	if compareValues(nil, 5) != 0 || compareValues("x", nil) != 0 {
		t.Error("nil so với mọi giá trị phải bằng nhau")
	}
	if compareValues(2, 10) != -1 {
		t.Error("so sánh số phải theo giá trị, không theo chuỗi")
	}
	if compareValues("2", "10") != -1 {
		t.Error("chuỗi số vẫn so theo giá trị số")
	}
	if compareValues("an", "ba") >= 0 {
		t.Error("chuỗi không phải số so theo thứ tự chuỗi")
	}
}
