/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package handlers exposes the pedigree operations as API Gateway proxy
functions.

Every operation is a Function with the aws-lambda-go handler signature. The
functions are named and collected in a static table so that a deployment can
either bind one Lambda per operation or bind the "router" function, which
dispatches on HTTPMethod and Resource:

	POST   /probands                       createProband
	GET    /probands/{id}                  getProband
	POST   /family                         createFamilyMember
	GET    /probands/{probandId}/family    listFamilyMembers
	PUT    /family/{id}                    updateFamilyMember
	DELETE /family/{id}                    deleteFamilyMember

NewRouter serves the same table over plain HTTP with chi for local runs.

Responses are JSON with permissive CORS headers. Error kinds map onto status
codes: invalid input is 400 with field details, unknown identifiers are 404
and everything else is a generic 500 whose cause is only logged.
*/
package handlers
