package zeamster

import (
	"net/http"
	"sort"
	"strings"

	"merchant_gateway/internal/domain/entities"
)

const (
	reasonApprovedMin = 1000
	reasonApprovedMax = 1240
)

// errorCodes follows the published response reason codes.
var errorCodes = map[int]entities.StandardErrorCode{
	1500: entities.ErrorCardDeclined,
	1510: entities.ErrorCallIssuer,
	1518: entities.ErrorUnsupportedFeature,
	1520: entities.ErrorPickupCard,
	1530: entities.ErrorProcessingError,
	1540: entities.ErrorConfigError,
	1541: entities.ErrorProcessingError,
	1588: entities.ErrorProcessingError,
	1599: entities.ErrorProcessingError,
	1601: entities.ErrorCardDeclined,
	1602: entities.ErrorCallIssuer,
	1603: entities.ErrorProcessingError,
	1604: entities.ErrorPickupCard,
	1605: entities.ErrorPickupCard,
	1606: entities.ErrorPickupCard,
	1607: entities.ErrorPickupCard,
	1608: entities.ErrorProcessingError,
	1609: entities.ErrorProcessingError,
	1610: entities.ErrorIncorrectPIN,
	1611: entities.ErrorProcessingError,
	1612: entities.ErrorProcessingError,
	1613: entities.ErrorInvalidCVC,
	1614: entities.ErrorInvalidExpiryDate,
	1615: entities.ErrorCardDeclined,
	1616: entities.ErrorCardDeclined,
	1617: entities.ErrorCardDeclined,
	1618: entities.ErrorProcessingError,
	1619: entities.ErrorCardDeclined,
	1620: entities.ErrorCardDeclined,
	1621: entities.ErrorProcessingError,
	1622: entities.ErrorExpiredCard,
	1623: entities.ErrorCardDeclined,
	1624: entities.ErrorCardDeclined,
	1625: entities.ErrorCardDeclined,
	1626: entities.ErrorProcessingError,
	1627: entities.ErrorProcessingError,
	1628: entities.ErrorConfigError,
	1629: entities.ErrorProcessingError,
	1630: entities.ErrorProcessingError,
	1631: entities.ErrorProcessingError,
	1641: entities.ErrorProcessingError,
	1650: entities.ErrorProcessingError,
	1652: entities.ErrorProcessingError,
	1653: entities.ErrorProcessingError,
	1654: entities.ErrorProcessingError,
	1655: entities.ErrorIncorrectAddress,
	1656: entities.ErrorIncorrectCVC,
	1657: entities.ErrorCardDeclined,
	1658: entities.ErrorProcessingError,
	1659: entities.ErrorCardDeclined,
	1660: entities.ErrorProcessingError,
	1661: entities.ErrorCardDeclined,
	1662: entities.ErrorProcessingError,
	1663: entities.ErrorProcessingError,
	1664: entities.ErrorProcessingError,
	1665: entities.ErrorProcessingError,
	1701: entities.ErrorCardDeclined,
	1800: entities.ErrorIncorrectCVC,
	1801: entities.ErrorProcessingError,
	1802: entities.ErrorConfigError,
	1803: entities.ErrorProcessingError,
	1804: entities.ErrorProcessingError,
	1805: entities.ErrorProcessingError,
}

func statusOK(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode <= http.StatusNoContent
}

func (p *Processor) Normalize(_ entities.Operation, statusCode int, r *Response) entities.GatewayResult {
	code, hasCode := r.reasonCode()
	success := statusOK(statusCode) && hasCode && code >= reasonApprovedMin && code <= reasonApprovedMax

	result := entities.GatewayResult{Success: success, Message: message(statusCode, r)}
	if t := r.Transaction; t != nil {
		result.Authorization = t.ID.String()
		result.AVS = entities.NewAVSResult(t.AVSEnhanced)
		result.CVV = entities.NewCVVResult(t.CVVResponse)
	}
	if success {
		return result
	}

	switch {
	case hasCode:
		result.ErrorCode = errorCodes[code]
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		result.ErrorCode = entities.ErrorConfigError
	case !statusOK(statusCode):
		result.ErrorCode = entities.ErrorProcessingError
	}
	return result
}

// message prefers the transaction verbiage, then validation errors, then
// the HTTP status text.
func message(statusCode int, r *Response) string {
	if r.Transaction != nil && r.Transaction.Verbiage != "" {
		return r.Transaction.Verbiage
	}
	if msg := flattenErrors(r.Errors); msg != "" {
		return msg
	}
	return http.StatusText(statusCode)
}

// flattenErrors renders {"field":["a","b"]} as "field: a, b" with fields
// sorted; lists and plain strings are joined as-is.
func flattenErrors(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := flattenErrors(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		fields := make([]string, 0, len(t))
		for f := range t {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			if s := flattenErrors(t[f]); s != "" {
				parts = append(parts, f+": "+s)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
