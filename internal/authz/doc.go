// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
The embedded policy defines three roles:

  - viewer: may query recommendations and read engine status
  - editor: viewer, plus adding rooms
  - admin: everything, including deleting rooms

A custom model or policy file can replace the embedded ones through
EnforcerConfig. Objects are matched with keyMatch2, so "/delete_room/:id"
covers every room ID.

Authorization applies only when auth_mode is "jwt"; with auth disabled the
mutation routes are open, as in the original service.
*/
package authz
