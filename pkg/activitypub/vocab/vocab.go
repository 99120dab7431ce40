/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vocab

// Context defines the object context.
type Context string

const (
	// ContextActivityStreams is the ActivityStreams context.
	ContextActivityStreams Context = "https://www.w3.org/ns/activitystreams"
	// ContextSecurity is the security context used whenever a public/private key is embedded in a document.
	ContextSecurity Context = "https://w3id.org/security/v1"
)

//nolint:gochecknoglobals
var (
	// PublicIRI indicates that the object is public, i.e. it may be viewed by anyone.
	PublicIRI = MustParseURL("https://www.w3.org/ns/activitystreams#Public")
)

// Type indicates the type of the object.
type Type string

const (
	// TypeCollection specifies the 'Collection' object type.
	TypeCollection Type = "Collection"
	// TypeOrderedCollection specifies the 'OrderedCollection' object type.
	TypeOrderedCollection Type = "OrderedCollection"
	// TypeCollectionPage specifies the 'CollectionPage' object type.
	TypeCollectionPage Type = "CollectionPage"
	// TypeOrderedCollectionPage specifies the 'OrderedCollectionPage' object type.
	TypeOrderedCollectionPage Type = "OrderedCollectionPage"

	// TypeService specifies the 'Service' actor type.
	TypeService Type = "Service"
	// TypePerson specifies the 'Person' actor type.
	TypePerson Type = "Person"
	// TypeApplication specifies the 'Application' actor type.
	TypeApplication Type = "Application"
	// TypeGroup specifies the 'Group' actor type.
	TypeGroup Type = "Group"
	// TypeOrganization specifies the 'Organization' actor type.
	TypeOrganization Type = "Organization"

	// TypeCreate specifies the 'Create' activity type.
	TypeCreate Type = "Create"
	// TypeUpdate specifies the 'Update' activity type.
	TypeUpdate Type = "Update"
	// TypeDelete specifies the 'Delete' activity type.
	TypeDelete Type = "Delete"
	// TypeAnnounce specifies the 'Announce' activity type.
	TypeAnnounce Type = "Announce"
	// TypeFollow specifies the 'Follow' activity type.
	TypeFollow Type = "Follow"
	// TypeAccept specifies the 'Accept' activity type.
	TypeAccept Type = "Accept"
	// TypeReject specifies the 'Reject' activity type.
	TypeReject Type = "Reject"
	// TypeTentativeAccept specifies the 'TentativeAccept' activity type.
	TypeTentativeAccept Type = "TentativeAccept"
	// TypeLike specifies the 'Like' activity type.
	TypeLike Type = "Like"
	// TypeInvite specifies the 'Invite' activity type.
	TypeInvite Type = "Invite"
	// TypeOffer specifies the 'Offer' activity type.
	TypeOffer Type = "Offer"
	// TypeUndo specifies the 'Undo' activity type.
	TypeUndo Type = "Undo"
	// TypeAdd specifies the 'Add' activity type.
	TypeAdd Type = "Add"
	// TypeRemove specifies the 'Remove' activity type.
	TypeRemove Type = "Remove"
	// TypeBlock specifies the 'Block' activity type.
	TypeBlock Type = "Block"

	// TypeLink specifies the 'Link' object type.
	TypeLink Type = "Link"
	// TypeMention specifies the 'Mention' link type.
	TypeMention Type = "Mention"

	// TypeNote specifies the 'Note' object type.
	TypeNote Type = "Note"
	// TypeArticle specifies the 'Article' object type.
	TypeArticle Type = "Article"
	// TypeImage specifies the 'Image' object type.
	TypeImage Type = "Image"
	// TypeVideo specifies the 'Video' object type.
	TypeVideo Type = "Video"
	// TypeDocument specifies the 'Document' object type (a generic attachment, e.g. a file).
	TypeDocument Type = "Document"
	// TypeTombstone specifies the 'Tombstone' object type left behind by a Delete.
	TypeTombstone Type = "Tombstone"
)

const (
	propertyContext      = "@context"
	propertyID           = "id"
	propertyType         = "type"
	propertyTo           = "to"
	propertyCc           = "cc"
	propertyBcc          = "bcc"
	propertyAudience     = "audience"
	propertyPublished    = "published"
	propertyUpdated      = "updated"
	propertyActor        = "actor"
	propertyCurrent      = "current"
	propertyFirst        = "first"
	propertyLast         = "last"
	propertyItems        = "items"
	propertyObject       = "object"
	propertyResult       = "result"
	propertyTarget       = "target"
	propertyEndTime      = "endTime"
	propertyStartTime    = "startTime"
	propertyTotalItems   = "totalItems"
	propertyURL          = "url"
	propertyAttributedTo = "attributedTo"
	propertyInReplyTo    = "inReplyTo"
	propertyAttachment   = "attachment"
	propertyContent      = "content"
	propertyMediaType    = "mediaType"
	propertySummary      = "summary"
	propertyName         = "name"
	propertyReplies      = "replies"
	propertyIndex        = "index"
	propertyParent       = "parent"
)

// MediaType defines a type of encoding for content embedded within a document.
type MediaType = string

const (
	// JSONMediaType indicates that the content is plain JSON string.
	JSONMediaType MediaType = "application/json"
	// GzipMediaType indicates that the content is compressed with gzip and base64-encoded.
	GzipMediaType MediaType = "application/gzip"
)

func reservedProperties() []string {
	return []string{
		propertyContext,
		propertyID,
		propertyType,
		propertyTo,
		propertyCc,
		propertyBcc,
		propertyAudience,
		propertyPublished,
		propertyUpdated,
		propertyActor,
		propertyCurrent,
		propertyFirst,
		propertyLast,
		propertyItems,
		propertyObject,
		propertyResult,
		propertyTarget,
		propertyEndTime,
		propertyStartTime,
		propertyTotalItems,
		propertyURL,
		propertyAttributedTo,
		propertyInReplyTo,
		propertyAttachment,
		propertyContent,
		propertyMediaType,
		propertySummary,
		propertyName,
		propertyReplies,
		propertyParent,
		propertyIndex,
	}
}

// Document defines a JSON document as a map.
type Document map[string]interface{}

// MergeWith merges the document with the given document. Any duplicate fields
// in the given document are ignored.
func (doc Document) MergeWith(other Document) {
	for k, v := range other {
		if _, ok := doc[k]; !ok {
			doc[k] = v
		}
	}
}

// Unmarshal unmarshals the document to the given object.
func (doc Document) Unmarshal(obj interface{}) error {
	return UnmarshalFromDoc(doc, obj)
}
