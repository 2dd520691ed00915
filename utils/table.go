package utils

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Bảng dữ liệu dùng lại cho các màn hình thống kê: lọc → sắp xếp → phân trang
// trên một mảng trong bộ nhớ, kèm dòng summary tuỳ cấu hình. Không I/O,
// mọi thao tác tính lại đồng bộ.

type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

type SummaryType string

const (
	SummaryNone   SummaryType = ""
	SummarySum    SummaryType = "sum"
	SummaryAvg    SummaryType = "avg"
	SummaryCount  SummaryType = "count"
	SummaryCustom SummaryType = "custom"
)

type TableColumn[T any] struct {
	Key        string
	Path       string // accessor dạng "user.profile.name"; rỗng thì dùng Key
	Sortable   bool
	Filterable bool

	// Render nhận (giá trị đã resolve, bản ghi, chỉ số dòng trong trang);
	// nil thì cell hiển thị giá trị stringify.
	Render func(value any, record T, rowIndex int) string

	Summary SummaryType
	// SummaryFunc cho SummaryCustom: nhận (dòng đang hiển thị, toàn bộ dòng đã lọc, cột)
	SummaryFunc func(visible []T, filtered []T, col TableColumn[T]) string
}

type Table[T any] struct {
	Columns []TableColumn[T]

	// SummaryFixed = true: summary tính trên toàn bộ tập đã lọc,
	// false: chỉ tính trên trang đang hiển thị
	SummaryFixed bool

	dataSource []T
	paginated  bool

	filters  map[string]string
	sortKey  string
	sortDir  SortDirection
	page     int
	pageSize int
}

func NewTable[T any](columns []TableColumn[T], data []T) *Table[T] {
	return &Table[T]{
		Columns:    columns,
		dataSource: data,
		paginated:  true,
		filters:    make(map[string]string),
		page:       1,
		pageSize:   10,
	}
}

// DisablePagination: bảng hiển thị toàn bộ dữ liệu trên một trang.
func (t *Table[T]) DisablePagination() {
	t.paginated = false
}

func (t *Table[T]) column(key string) *TableColumn[T] {
	for i := range t.Columns {
		if t.Columns[i].Key == key {
			return &t.Columns[i]
		}
	}
	return nil
}

func (t *Table[T]) columnPath(col TableColumn[T]) string {
	if col.Path != "" {
		return col.Path
	}
	return col.Key
}

// SetFilter đặt filter text cho cột; chuỗi rỗng là xoá filter.
// Mỗi lần đổi filter quay về trang 1.
func (t *Table[T]) SetFilter(key, value string) {
	col := t.column(key)
	if col == nil || !col.Filterable {
		return
	}
	if value == "" {
		delete(t.filters, key)
	} else {
		t.filters[key] = value
	}
	t.page = 1
}

// ToggleSort xoay vòng asc → desc → không sắp xếp trên cùng một cột;
// bấm cột khác thì bắt đầu lại từ asc.
func (t *Table[T]) ToggleSort(key string) {
	col := t.column(key)
	if col == nil || !col.Sortable {
		return
	}
	if t.sortKey != key {
		t.sortKey = key
		t.sortDir = SortAsc
		return
	}
	switch t.sortDir {
	case SortAsc:
		t.sortDir = SortDesc
	case SortDesc:
		t.sortDir = SortNone
		t.sortKey = ""
	default:
		t.sortDir = SortAsc
	}
}

func (t *Table[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	t.page = page
}

// SetPageSize đổi cỡ trang và quay về trang 1.
func (t *Table[T]) SetPageSize(size int) {
	if size < 1 {
		return
	}
	t.pageSize = size
	t.page = 1
}

func (t *Table[T]) Page() int { return t.page }

func (t *Table[T]) PageSize() int { return t.pageSize }

func (t *Table[T]) SortKey() string { return t.sortKey }

func (t *Table[T]) SortDir() SortDirection { return t.sortDir }

// FilteredRows trả về dữ liệu đã lọc và sắp xếp (chưa phân trang).
func (t *Table[T]) FilteredRows() []T {
	rows := make([]T, 0, len(t.dataSource))

	for _, record := range t.dataSource {
		match := true
		for key, filter := range t.filters {
			col := t.column(key)
			if col == nil {
				continue
			}
			value := Stringify(ResolvePath(record, t.columnPath(*col)))
			if !strings.Contains(strings.ToLower(value), strings.ToLower(filter)) {
				match = false
				break
			}
		}
		if match {
			rows = append(rows, record)
		}
	}

	if t.sortKey != "" && t.sortDir != SortNone {
		col := t.column(t.sortKey)
		if col != nil {
			path := t.columnPath(*col)
			sort.SliceStable(rows, func(i, j int) bool {
				cmp := compareValues(ResolvePath(rows[i], path), ResolvePath(rows[j], path))
				if t.sortDir == SortDesc {
					return cmp > 0
				}
				return cmp < 0
			})
		}
	}

	return rows
}

// VisibleRows trả về trang hiện tại của dữ liệu đã lọc + sắp xếp.
func (t *Table[T]) VisibleRows() []T {
	rows := t.FilteredRows()
	if !t.paginated {
		return rows
	}

	start := (t.page - 1) * t.pageSize
	if start >= len(rows) {
		return []T{}
	}
	end := start + t.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func (t *Table[T]) PageCount() int {
	if !t.paginated {
		return 1
	}
	total := len(t.FilteredRows())
	if total == 0 {
		return 1
	}
	return (total + t.pageSize - 1) / t.pageSize
}

// RenderCell stringify giá trị cell, hoặc gọi Render tuỳ biến nếu có.
func (t *Table[T]) RenderCell(col TableColumn[T], record T, rowIndex int) string {
	value := ResolvePath(record, t.columnPath(col))
	if col.Render != nil {
		return col.Render(value, record, rowIndex)
	}
	return Stringify(value)
}

// SummaryRow tính dòng tổng theo cấu hình từng cột.
// SummaryFixed quyết định pool là toàn bộ tập đã lọc hay chỉ trang hiện tại.
func (t *Table[T]) SummaryRow() map[string]string {
	filtered := t.FilteredRows()
	visible := t.VisibleRows()

	pool := visible
	if t.SummaryFixed {
		pool = filtered
	}

	result := make(map[string]string)
	for _, col := range t.Columns {
		switch col.Summary {
		case SummarySum:
			sum := 0.0
			for _, record := range pool {
				if f, ok := toFloat(ResolvePath(record, t.columnPath(col))); ok {
					sum += f
				}
			}
			result[col.Key] = strconv.FormatFloat(sum, 'f', -1, 64)
		case SummaryAvg:
			sum := 0.0
			count := 0
			for _, record := range pool {
				// giá trị không phải số bị loại khỏi pool tính trung bình
				if f, ok := toFloat(ResolvePath(record, t.columnPath(col))); ok {
					sum += f
					count++
				}
			}
			if count == 0 {
				result[col.Key] = "0"
			} else {
				result[col.Key] = strconv.FormatFloat(sum/float64(count), 'f', -1, 64)
			}
		case SummaryCount:
			result[col.Key] = strconv.Itoa(len(pool))
		case SummaryCustom:
			if col.SummaryFunc != nil {
				result[col.Key] = col.SummaryFunc(visible, filtered, col)
			}
		}
	}
	return result
}

// ResolvePath lấy giá trị theo accessor "a.b.c" trên struct/map lồng nhau.
// Trả về nil nếu đường dẫn không tồn tại — không bao giờ panic.
func ResolvePath(record any, path string) any {
	value := reflect.ValueOf(record)
	for _, segment := range strings.Split(path, ".") {
		for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
			if value.IsNil() {
				return nil
			}
			value = value.Elem()
		}
		switch value.Kind() {
		case reflect.Struct:
			field := fieldByNameOrTag(value, segment)
			if !field.IsValid() {
				return nil
			}
			value = field
		case reflect.Map:
			key := reflect.ValueOf(segment)
			if !key.Type().AssignableTo(value.Type().Key()) {
				return nil
			}
			entry := value.MapIndex(key)
			if !entry.IsValid() {
				return nil
			}
			value = entry
		default:
			return nil
		}
	}
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if !value.IsValid() {
		return nil
	}
	return value.Interface()
}

// fieldByNameOrTag tìm field theo tên (không phân biệt hoa thường) hoặc json tag.
func fieldByNameOrTag(value reflect.Value, name string) reflect.Value {
	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if strings.EqualFold(field.Name, name) {
			return value.Field(i)
		}
		tag := strings.Split(field.Tag.Get("json"), ",")[0]
		if tag != "" && tag == name {
			return value.Field(i)
		}
		// field embed: tìm tiếp bên trong
		if field.Anonymous {
			inner := value.Field(i)
			for inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					break
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if found := fieldByNameOrTag(inner, name); found.IsValid() {
					return found
				}
			}
		}
	}
	return reflect.Value{}
}

// Stringify đổi giá trị cell về chuỗi để lọc/hiển thị; nil → "".
func Stringify(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(value)
	}
}

// compareValues so sánh theo thứ tự tự nhiên; nil coi như bằng mọi giá trị
// để dữ liệu không đồng nhất không làm hỏng sort.
// Chuỗi mà hai bên đều parse được thành số thì so theo giá trị số
// ("2" < "10") — giá tiền hay số lượng serialize thành chuỗi vẫn sort đúng.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		return 0
	}

	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}

	sa, sb := Stringify(a), Stringify(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// toFloat ép giá trị về số cho sum/avg; chuỗi số cũng được chấp nhận.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		if math.IsNaN(v) {
			return 0, false
		}
		return v, true
	case bool:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
