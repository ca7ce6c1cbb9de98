package purchase

import (
	"testing"

	purchasev1 "github.com/louisbranch/festival-tickets/api/gen/go/purchase/v1"
)

func TestProtoContract_PurchaseServiceSymbolsExist(t *testing.T) {
	var _ purchasev1.PurchaseServiceServer = (*Service)(nil)
	if purchasev1.PurchaseService_ServiceDesc.ServiceName != "purchase.v1.PurchaseService" {
		t.Fatalf("service name = %q", purchasev1.PurchaseService_ServiceDesc.ServiceName)
	}
}
