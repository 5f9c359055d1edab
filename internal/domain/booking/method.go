package booking

// Method は支払方法を表す
type Method string

const (
	MethodCash       Method = "cash"
	MethodCreditCard Method = "credit_card"
)

// ParseMethod は文字列から支払方法を解決する
// 未知の値は閉じた列挙に入る前に弾く
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCash, MethodCreditCard:
		return Method(s), nil
	default:
		return "", ErrUnknownPaymentMethod
	}
}
