package constants

// Vai trò tài khoản
const (
	ROLE_ADMIN     = "ADMIN"
	ROLE_MODERATOR = "MODERATOR"
	ROLE_USER      = "USER"
)

var ROLES = []string{ROLE_ADMIN, ROLE_MODERATOR, ROLE_USER}

// Phương thức thanh toán
const (
	PAID_CASH     = "CASH"
	PAID_TRANSFER = "TRANSFER"
	PAID_LINEPAY  = "LINEPAY"
)

var PAID_METHODS = []string{PAID_CASH, PAID_TRANSFER, PAID_LINEPAY}

// Thông báo lỗi chung
const (
	ERROR_INPUT                           = "Dữ liệu không hợp lệ"
	ERROR_INTERNAL_ERROR                  = "Lỗi hệ thống, vui lòng thử lại sau"
	DATA_INPUT_IS_NOT_NUMBER              = "Tham số phải là số"
	NOT_ADMIN                             = "Bạn không có quyền thực hiện thao tác này"
	NOT_LOGGED_IN                         = "Vui lòng đăng nhập"
	CAN_NOT_HASH_PASSWORD                 = "Không thể mã hoá mật khẩu"
	NEW_PASSWORD_NOT_SAME_REPEAT_PASSWORD = "Mật khẩu mới không khớp với mật khẩu nhập lại"
	USERNAME_EXISTS                       = "Tên đăng nhập đã được sử dụng"
	EMAIL_EXISTS                          = "Email đã tồn tại"
	WRONG_CREDENTIALS                     = "Sai tên đăng nhập hoặc mật khẩu"
	ACCOUNT_DISABLED                      = "Tài khoản đã bị khoá"
)

// Thông báo lỗi nghiệp vụ đặt món
const (
	EVENT_NOT_FOUND       = "Không tìm thấy sự kiện đặt món"
	EVENT_CLOSED          = "Sự kiện đã đóng, không thể thao tác đơn hàng"
	EVENT_DEADLINE_PASSED = "Đã quá hạn chốt đơn"
	EVENT_HAS_ORDERS      = "Sự kiện đã có đơn hàng, không thể xoá"
	ORDER_NOT_FOUND       = "Không tìm thấy đơn hàng"
	ORDER_ALREADY_EXISTS  = "Bạn đã đặt đơn cho sự kiện này, hãy sửa đơn cũ"
	ORDER_EMPTY_ITEMS     = "Đơn hàng phải có ít nhất một món"
	SHOP_NOT_FOUND        = "Không tìm thấy quán ăn"
	SHOP_NAME_EXISTS      = "Tên quán đã tồn tại"
	MENU_NOT_FOUND        = "Không tìm thấy thực đơn"
	MENU_ITEM_NOT_FOUND   = "Không tìm thấy món ăn"
	NOT_EVENT_ORGANIZER   = "Chỉ người tạo sự kiện hoặc admin mới được thao tác"
	INVALID_PAID_METHOD   = "Phương thức thanh toán không hợp lệ"
	RESET_TOKEN_INVALID   = "Mã đặt lại mật khẩu không hợp lệ hoặc đã hết hạn"
)
