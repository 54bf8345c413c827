// Package ports declares the interfaces that connect the layers. Handlers
// call the service ports (StoryService); the application calls the
// outbound ports (StoryRepository, ChangeNotifier), which storage and
// client adapters implement. Mocks for every port live in /mocks.
package ports
