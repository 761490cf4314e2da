package ordering_test

import (
	"fmt"

	"github.com/matzehuels/rollcall/pkg/render/chamber/ordering"
	"github.com/matzehuels/rollcall/pkg/vote"
)

func ExamplePartyBlocks() {
	records := []vote.Record{
		{ID: "d1", Party: vote.Democrat, Value: vote.Nay},
		{ID: "r1", Party: vote.Republican, Value: vote.Yea},
		{ID: "r2", Party: vote.Republican, Value: vote.Yea},
		{ID: "r3", Party: vote.Republican, Value: vote.Yea},
		{ID: "r4", Party: vote.Republican, Value: vote.Nay},
	}

	ordered := ordering.NewPartyBlocks(42).Order(records)

	// Republicans hold more seats, so their block comes first and opens with
	// two thirds of their Yea ballots in document order.
	fmt.Println("Party order:", ordering.PartyOrder(records))
	fmt.Println("Lead:", ordered[0].ID, ordered[1].ID)
	fmt.Println("Last:", ordered[len(ordered)-1].ID)
	// Output:
	// Party order: [R D]
	// Lead: r1 r2
	// Last: d1
}
