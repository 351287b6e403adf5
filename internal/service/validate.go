package service

import (
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	pb "github.com/mmynk/tableround/pkg/proto"
)

// Request bounds. Amounts are in the smallest currency unit; the bounds keep
// price × quantity and the sums built from it far inside int64.
const (
	priceTag       = "gte=0,lte=100000000000"
	quantityTag    = "gt=0,lte=10000"
	adjustQtyTag   = "ne=0,gte=-10000,lte=10000"
	weightTag      = "gte=0,lte=1000000"
	unitsTag       = "gte=0,lte=10000"
	nameTag        = "max=200"
	noteTag        = "max=500"
	displayNameTag = "required,max=100"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// rule checks one request field against a validator tag.
type rule struct {
	field string
	value any
	tag   string
}

func check(field string, value any, tag string) rule {
	return rule{field: field, value: value, tag: tag}
}

func required(field, value string) rule {
	return check(field, value, "required")
}

// lineName requires a name unless the line comes from a catalog dish.
func lineName(name, menuItemID string) rule {
	if menuItemID != "" {
		return check("name", name, nameTag)
	}
	return check("name", name, "required,"+nameTag)
}

// shareRules validates the participants of a shared line.
func shareRules(shares []*pb.Share) []rule {
	rules := make([]rule, 0, 3*len(shares))
	for i, sh := range shares {
		prefix := fmt.Sprintf("participants[%d].", i)
		rules = append(rules,
			required(prefix+"participant_id", sh.GetParticipantId()),
			check(prefix+"weight", sh.GetWeight(), weightTag),
			check(prefix+"units", sh.GetUnits(), unitsTag),
		)
	}
	return rules
}

// validateRequest runs every rule and reports all failing fields at once.
func validateRequest(rules ...rule) error {
	var failed []string
	for _, r := range rules {
		err := validate.Var(r.value, r.tag)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
		for _, fe := range verrs {
			failed = append(failed, fmt.Sprintf("%s failed %q", r.field, fe.Tag()))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(failed, "; ")))
}
