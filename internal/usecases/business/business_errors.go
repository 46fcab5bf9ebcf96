package business

import "errors"

var (
	ErrBusinessNotFound  = errors.New("business entity not found")
	ErrFindBusiness      = errors.New("error finding business entity")
	ErrListBusinesses    = errors.New("error listing business entities")
	ErrFindProfile       = errors.New("error finding credential profile")
	ErrFetchRelation     = errors.New("error fetching business accounts from Meta")
	ErrAssociationFailed = errors.New("association failed")
)
