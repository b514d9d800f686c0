package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loan links a member to a borrowed book edition. The Mongo _id is never
// serialized to JSON; LoanID carries its hex form on the wire.
type Loan struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	LoanID     string             `bson:"-" json:"loanID"`
	MemberName string             `bson:"memberName" json:"memberName"`
	ISBN       string             `bson:"ISBN" json:"ISBN"`
	Title      string             `bson:"title" json:"title"`
	BookID     string             `bson:"bookID" json:"bookID"`
	LoanDate   string             `bson:"loanDate" json:"loanDate"`
}

const (
	LoanEntity = "loan"
)
